package product

// Availability values. A pet is a unique animal: selling it flips the
// listing to unavailable, cancelling the owning order restores it.
const (
	StatusUnavailable = 0
	StatusAvailable   = 1
)

// Gender values carried on listings.
const (
	GenderFemale = 0
	GenderMale   = 1
)

// Product is one pet listing as the backend returns it. Category, Breed and
// Origin are denormalized display names; the ids are the source of truth.
type Product struct {
	ID          int    `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	CategoryID  int    `json:"categoryId"`
	BreedID     int    `json:"breedId,omitempty"`
	OriginID    int    `json:"originId,omitempty"`
	Age         int    `json:"age,omitempty"`
	Gender      int    `json:"gender"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Status      int    `json:"status"`

	Category string `json:"category,omitempty"`
	Breed    string `json:"breed,omitempty"`
	Origin   string `json:"origin,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// CreateRequest is the explicit shape for listing a new pet.
type CreateRequest struct {
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	CategoryID  int    `json:"categoryId"`
	BreedID     int    `json:"breedId,omitempty"`
	OriginID    int    `json:"originId,omitempty"`
	Age         int    `json:"age,omitempty"`
	Gender      int    `json:"gender"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// UpdateRequest edits an existing listing. Every field besides the id is
// explicitly optional, so partial edits never smuggle in zero values.
type UpdateRequest struct {
	ID          int     `json:"id"`
	Code        *string `json:"code,omitempty"`
	Name        *string `json:"name,omitempty"`
	CategoryID  *int    `json:"categoryId,omitempty"`
	BreedID     *int    `json:"breedId,omitempty"`
	OriginID    *int    `json:"originId,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Gender      *int    `json:"gender,omitempty"`
	Price       *int    `json:"price,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *int    `json:"status,omitempty"`
}
