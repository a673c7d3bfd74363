package encoding

// Serializable is implemented by values with a self-describing binary form.
// Deserialize must accept whatever Serialize produced.
type Serializable interface {
	Serialize() ([]byte, error)
	Deserialize([]byte) error
}
