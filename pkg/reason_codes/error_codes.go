package reasoncodes

type ReasonCode string

const (
	ErrNotFound       ReasonCode = "NotFound"
	ErrInvalidState   ReasonCode = "InvalidState"
	ErrUnauthorized   ReasonCode = "Unauthorized"
	ErrTransientStore ReasonCode = "TransientStoreError"
	ErrInvalidInput   ReasonCode = "InvalidInput"
	ErrUnmarshal      ReasonCode = "UnmarshalError"
	ErrContentStore   ReasonCode = "ContentStoreError"
	ErrLedger         ReasonCode = "LedgerError"
	ErrInternal       ReasonCode = "InternalError"
)
