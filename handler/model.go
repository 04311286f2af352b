package handler

type GetSummaryRequest struct {
	MatchID string `uri:"match_id" binding:"required"`
}

type CreateSubscriptionRequest struct {
	Token string `binding:"required" json:"token"`
}

type DeleteSubscriptionRequest struct {
	Token string `form:"token" binding:"required"`
}

type TriggerSummaryCheckRequest struct {
	MatchID string `binding:"required" json:"match_id"`
	Attempt uint   `binding:"required" json:"attempt"`
}
