package inventory

import "fieldbooking/internal/domain"

const dateLayout = "2006-01-02"

// CreateInventoryRequest uses pointers so a missing count is rejected while
// an explicit zero is accepted.
type CreateInventoryRequest struct {
	Balls     *int   `json:"balls" binding:"required,min=0"`
	Shoes     *int   `json:"shoes" binding:"required,min=0"`
	Jerseys   *int   `json:"jerseys" binding:"required,min=0"`
	Gloves    *int   `json:"gloves" binding:"required,min=0"`
	CheckDate string `json:"check_date" binding:"required,datetime=2006-01-02"`
}

type InventoryResponse struct {
	ID        int64  `json:"id"`
	Balls     int    `json:"balls"`
	Shoes     int    `json:"shoes"`
	Jerseys   int    `json:"jerseys"`
	Gloves    int    `json:"gloves"`
	CheckDate string `json:"check_date"`
	UpdatedBy int64  `json:"updated_by"`
}

func toInventoryResponse(i *domain.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:        i.ID,
		Balls:     i.Balls,
		Shoes:     i.Shoes,
		Jerseys:   i.Jerseys,
		Gloves:    i.Gloves,
		CheckDate: i.CheckDate.Format(dateLayout),
		UpdatedBy: i.UpdatedBy,
	}
}
