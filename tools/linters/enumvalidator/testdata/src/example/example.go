package example

type QuestionType string

const (
	QuestionTypeShortText QuestionType = "short_text"
	QuestionTypeCheckbox  QuestionType = "checkbox"
)

type Role string

const (
	RoleEditor Role = "editor"
)

type Question struct {
	Type QuestionType
}

type StaffMember struct {
	Role Role
}

func bad() {
	q := &Question{}
	q.Type = "dropdown" // want "enum field Type assigned string literal"

	s := &StaffMember{}
	s.Role = "superuser" // want "enum field Role assigned string literal"

	_ = StaffMember{Role: "guest"} // want "enum field Role assigned string literal"
}

func good() {
	q := &Question{}
	q.Type = QuestionTypeCheckbox // OK: using constant

	s := &StaffMember{Role: RoleEditor}
	s.Role = RoleEditor
}

func alsoGood() {
	// OK: Variable, not literal
	t := QuestionTypeShortText
	q := &Question{Type: t}
	_ = q
}
