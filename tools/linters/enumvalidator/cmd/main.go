package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"givebase.app/crm/tools/linters/enumvalidator"
)

func main() {
	singlechecker.Main(enumvalidator.Analyzer)
}
