package transfer

type CommentCreation struct {
	Body string `json:"body"`
}
