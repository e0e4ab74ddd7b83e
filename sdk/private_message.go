package sdk

// PrivateMessage is a direct message between two people.
type PrivateMessage struct {
	ID          int32   `json:"id"`
	CreatorID   int32   `json:"creator_id"`
	RecipientID int32   `json:"recipient_id"`
	Content     string  `json:"content"`
	Deleted     bool    `json:"deleted"`
	Read        bool    `json:"read"`
	Published   string  `json:"published"`
	Updated     *string `json:"updated,omitempty"`
	APID        string  `json:"ap_id"`
	Local       bool    `json:"local"`
}

// PrivateMessageView is a private message with both participants.
type PrivateMessageView struct {
	PrivateMessage PrivateMessage `json:"private_message"`
	Creator        Person         `json:"creator"`
	Recipient      Person         `json:"recipient"`
}

// GetPrivateMessages lists the caller's private messages.
type GetPrivateMessages struct {
	UnreadOnly *bool  `json:"unread_only,omitempty"`
	Page       *int32 `json:"page,omitempty"`
	Limit      *int32 `json:"limit,omitempty"`
	Auth       string `json:"auth"`
}

type PrivateMessagesResponse struct {
	PrivateMessages []PrivateMessageView `json:"private_messages"`
}

type CreatePrivateMessage struct {
	Content     string `json:"content"`
	RecipientID int32  `json:"recipient_id"`
	Auth        string `json:"auth"`
}

type EditPrivateMessage struct {
	PrivateMessageID int32  `json:"private_message_id"`
	Content          string `json:"content"`
	Auth             string `json:"auth"`
}

type DeletePrivateMessage struct {
	PrivateMessageID int32  `json:"private_message_id"`
	Deleted          bool   `json:"deleted"`
	Auth             string `json:"auth"`
}

type MarkPrivateMessageAsRead struct {
	PrivateMessageID int32  `json:"private_message_id"`
	Read             bool   `json:"read"`
	Auth             string `json:"auth"`
}

// PrivateMessageResponse is returned by the private message mutations.
type PrivateMessageResponse struct {
	PrivateMessageView PrivateMessageView `json:"private_message_view"`
}
