package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorlink/backend/internal/app/models"
	"github.com/mentorlink/backend/internal/app/models/dto"
	"github.com/mentorlink/backend/internal/app/services"
	"github.com/mentorlink/backend/internal/middleware"
)

// MessageController handles the HTTP messaging surface
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// Send godoc
// @Summary Send a chat message
// @Description Stores the message and relays it to the receiver's live connections. The declared sender must be the authenticated participant.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message to send"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Sender does not match the authenticated participant"
// @Failure 404 {object} dto.ErrorResponse "Sender or receiver not found"
// @Router /messages/send [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	// A participant may only send as itself.
	if caller, ok := callerRef(ctx); !ok || caller != req.SenderRef() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Sender does not match the authenticated participant")))
		return
	}

	message := &models.Message{
		SenderID:     req.Sender,
		SenderKind:   models.ParticipantKind(req.SenderModel),
		ReceiverID:   req.Receiver,
		ReceiverKind: models.ParticipantKind(req.ReceiverModel),
		Body:         req.Message,
	}

	stored, err := c.messageService.Send(ctx.Request.Context(), message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewMessageResponse(stored), "Message sent"))
}

// GetConversation godoc
// @Summary Get the message history between two participants
// @Description Returns every message exchanged between the pair, oldest first. The pair is unordered.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GetConversationRequest true "Participant pair"
// @Success 200 {object} dto.APIResponse{data=[]dto.MessageResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /messages/get [post]
func (c *MessageController) GetConversation(ctx *gin.Context) {
	var req dto.GetConversationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	messages, err := c.messageService.History(ctx.Request.Context(), req.Ref1(), req.Ref2())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewMessageListResponse(messages), ""))
}

// callerRef reads the authenticated participant identity placed in the
// context by the auth middleware.
func callerRef(ctx *gin.Context) (models.ParticipantRef, bool) {
	idVal, idOK := ctx.Get("participantID")
	kindVal, kindOK := ctx.Get("participantKind")
	if !idOK || !kindOK {
		return models.ParticipantRef{}, false
	}

	id, ok := idVal.(int64)
	if !ok {
		return models.ParticipantRef{}, false
	}
	kind, ok := kindVal.(string)
	if !ok {
		return models.ParticipantRef{}, false
	}

	return models.ParticipantRef{ID: id, Kind: models.ParticipantKind(kind)}, true
}
