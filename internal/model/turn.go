package model

// TurnResult is the transient outcome of one submit cycle. It is not
// stored; the durable effects (transcript appends, conversation handle,
// quick replies) live on the session.
type TurnResult struct {
	// Failed is set when the exchange did not complete: transport
	// failure or a malformed response. The other fields are zero in
	// that case and the transcript carries the apology message.
	Failed bool
	Reason string

	ConversationID int64
	Reply          string
	QuickReplies   []string
	Payload        Payload
}
