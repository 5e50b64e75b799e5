package domain

// Categories is the fixed set of product categories the co-op catalog knows.
var Categories = []string{"Infrastructure", "Machines", "Machinery", "Inputs", "Transport"}

type Product struct {
	ID           string   `db:"id" json:"id"`
	Title        string   `db:"title" json:"title"`
	Category     string   `db:"category" json:"category"`
	Price        float64  `db:"price" json:"price"`
	RentPerDay   float64  `db:"rent_per_day" json:"rentPerDay"`
	Img          string   `db:"img" json:"img"`
	Rating       float64  `db:"rating" json:"rating"`
	Description  string   `db:"description" json:"description"`
	TagsJSON     string   `db:"tags_json" json:"-"`
	Tags         []string `db:"-" json:"tags"`
	Availability bool     `db:"availability" json:"availability"`
	Stock        int      `db:"stock" json:"stock"`
	CreatedAt    string   `db:"created_at" json:"createdAt"`
	UpdatedAt    string   `db:"updated_at" json:"updatedAt"`
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Title        *string   `json:"title"`
	Category     *string   `json:"category"`
	Price        *float64  `json:"price"`
	RentPerDay   *float64  `json:"rentPerDay"`
	Img          *string   `json:"img"`
	Rating       *float64  `json:"rating"`
	Description  *string   `json:"description"`
	Tags         *[]string `json:"tags"`
	Availability *bool     `json:"availability"`
	Stock        *int      `json:"stock"`
}

type CursorPosition struct {
	ID        string  `db:"id" json:"id"`
	UserID    string  `db:"user_id" json:"userId"`
	X         float64 `db:"x" json:"x"`
	Y         float64 `db:"y" json:"y"`
	Page      string  `db:"page" json:"page"`
	Timestamp string  `db:"timestamp" json:"timestamp"`
}
