package address

// Default flag values; at most one address per user carries DefaultYes.
const (
	DefaultNo  = 0
	DefaultYes = 1
)

// Address is one shipping address belonging to exactly one user.
type Address struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Province  string `json:"province"`
	District  string `json:"district"`
	Ward      string `json:"ward"`
	Info      string `json:"info"`
	Phone     string `json:"phone"`
	IsDefault int    `json:"isDefault"`
	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

type CreateRequest struct {
	UserID   int    `json:"userId"`
	Province string `json:"province"`
	District string `json:"district"`
	Ward     string `json:"ward"`
	Info     string `json:"info"`
	Phone    string `json:"phone"`
}

type UpdateRequest struct {
	ID       int     `json:"id"`
	Province *string `json:"province,omitempty"`
	District *string `json:"district,omitempty"`
	Ward     *string `json:"ward,omitempty"`
	Info     *string `json:"info,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
