package message

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required,uuid4"`
	Content    string `json:"content" binding:"required,min=1,max=2000"`
}
