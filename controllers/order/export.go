package orderControllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"smartkart/models"
)

// GET /admin/orders/export
func ExportOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Payment").Order("created_at DESC").Find(&orders).Error; err != nil {
			internalError(c, err, "failed to fetch orders for export")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			internalError(c, err, "failed to create sheet")
			return
		}

		headers := []string{
			"ID", "OrderNumber", "UserID", "Status", "TotalAmount",
			"PaymentMethod", "PaymentStatus", "TrackingNumber", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Number())
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
			if o.Payment != nil {
				row.AddCell().SetValue(o.Payment.Method)
				row.AddCell().SetValue(string(o.Payment.Status))
			} else {
				row.AddCell().SetValue("")
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(o.TrackingNumber)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			internalError(c, err, "failed to write export")
		}
	}
}
