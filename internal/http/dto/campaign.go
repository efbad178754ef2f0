package dto

import (
	"encoding/json"

	"givebase.app/crm/internal/model"
)

type ReconcileDesignationsRequest struct {
	// An empty list unlinks every designation; a missing field is rejected.
	DesignationIDs []ID `json:"designation_ids" binding:"required"`
}

type ReconcileQuestionsRequest struct {
	Questions []model.QuestionInput `json:"questions" binding:"required"`
}

type PublishCampaignRequest struct {
	PageConfig json.RawMessage `json:"page_config,omitempty"`
}

type PublishPageRequest struct {
	ContentConfig json.RawMessage `json:"content_config,omitempty"`
}
