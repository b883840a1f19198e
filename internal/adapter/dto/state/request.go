package state

// ClearErrorRequest names the error slot to clear
type ClearErrorRequest struct {
	Kind string `param:"kind" validate:"required,oneof=process search upload"`
}
