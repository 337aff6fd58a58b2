package response

type ProductsResponse struct {
	Products []Product `json:"products"`
}

type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Status      string    `json:"status"`
	Tags        string    `json:"tags"`
	UpdatedAt   string    `json:"updated_at"`
	Variants    []Variant `json:"variants"`
}

type Variant struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Price           string  `json:"price"`
	CompareAtPrice  *string `json:"compare_at_price"`
	Barcode         *string `json:"barcode"`
	InventoryItemID int64   `json:"inventory_item_id"`
}

type MetafieldsResponse struct {
	Metafields []Metafield `json:"metafields"`
}

type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

type LocationsResponse struct {
	Locations []Location `json:"locations"`
}

type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type InventoryLevelsResponse struct {
	InventoryLevels []InventoryLevel `json:"inventory_levels"`
}

type InventoryLevel struct {
	InventoryItemID int64 `json:"inventory_item_id"`
	LocationID      int64 `json:"location_id"`
	Available       int   `json:"available"`
}
