package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"givebase.app/crm/internal/http/dto"
	"givebase.app/crm/internal/model"
)

// SchemaHandler publishes JSON Schemas for the question editor.
type SchemaHandler struct {
	questions gin.H
}

func NewSchemaHandler() *SchemaHandler {
	r := &jsonschema.Reflector{DoNotReference: true}
	text := r.Reflect(&model.TextOptions{})
	choice := r.Reflect(&model.ChoiceOptions{})

	options := gin.H{}
	for _, t := range model.QuestionTypes {
		switch t {
		case model.QuestionTypeShortText, model.QuestionTypeLongText:
			options[string(t)] = text
		case model.QuestionTypeSingleSelect, model.QuestionTypeMultiSelect:
			options[string(t)] = choice
		default:
			options[string(t)] = nil
		}
	}

	return &SchemaHandler{questions: gin.H{
		"request": r.Reflect(&dto.ReconcileQuestionsRequest{}),
		"options": options,
	}}
}

func (h *SchemaHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.questions)
}
