package model

const (
	EntityName = "sequence"

	FieldPrefix = "Prefix"
	FieldNext   = "Next"
)

// Sequence is the next number to hand out for one id prefix.
type Sequence struct {
	Prefix string `csv:"Prefix"`
	Next   string `csv:"Next"`
}
