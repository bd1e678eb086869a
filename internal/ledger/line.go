package ledger

// Line is the plain entry used by stock, dressing rooms and requests.
type Line struct {
	ID       int    `json:"item_id" yaml:"item_id"`
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// NewLine builds a Line. Validation happens when it is added to a ledger.
func NewLine(itemID int, name string, qty int) Line {
	return Line{ID: itemID, Name: name, Quantity: qty}
}

func (l Line) ItemID() int      { return l.ID }
func (l Line) ItemName() string { return l.Name }
func (l Line) Qty() int         { return l.Quantity }

func (l Line) WithQuantity(qty int) Line {
	l.Quantity = qty
	return l
}
