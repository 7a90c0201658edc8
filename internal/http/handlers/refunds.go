package handlers

import (
	"net/http"

	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/refunds?status&search_type&search_value
func GetRefunds(c *gin.Context) {
	refunds, err := repositories.RefundsRepository{}.List(
		c.Query("status"),
		c.Query("search_type"),
		c.Query("search_value"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, refunds)
}

type refundDecisionRequest struct {
	Status               string   `json:"status"`
	ApprovedRefundTWD    *float64 `json:"approved_refund_twd"`
	ApprovedRefundPoints *int64   `json:"approved_refund_points"`
	DecisionNote         *string  `json:"decision_note"`
}

// PUT /api/refunds/:id
func UpdateRefund(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var req refundDecisionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := domain.ValidateStatus(domain.RefundStatuses, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}

	err := repositories.RefundsRepository{}.UpdateDecision(id, repositories.RefundDecision{
		Status:               req.Status,
		ApprovedRefundTWD:    req.ApprovedRefundTWD,
		ApprovedRefundPoints: req.ApprovedRefundPoints,
		DecisionNote:         req.DecisionNote,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refund status updated", "status": req.Status})
}
