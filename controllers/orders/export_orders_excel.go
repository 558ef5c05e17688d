package ordersControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/q3rmos/imperial-gems/models"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "OrderRef", "FullName", "Email", "Phone",
			"Country", "Region", "City", "PostalCode", "Address",
			"Items", "Total", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows, one per order with the item count and decimal total
		for _, o := range orders {
			total := decimal.Zero
			itemCount := 0
			for i := range o.Items {
				total = total.Add(o.Items[i].TotalPrice())
				itemCount += o.Items[i].Quantity
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(int(o.ID))
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.FullName)
			row.AddCell().SetValue(o.Email)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.Country)
			row.AddCell().SetValue(o.Region)
			row.AddCell().SetValue(o.City)
			row.AddCell().SetValue(o.PostalCode)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(itemCount)
			row.AddCell().SetValue(total.StringFixed(2))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
