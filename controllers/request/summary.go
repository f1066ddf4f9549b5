package request

import (
	"time"

	"bm-admin/logger"
	requestModel "bm-admin/models/request"
	"bm-admin/types"
	requestTypes "bm-admin/types/request"
	"bm-admin/utils"

	"github.com/gofiber/fiber/v2"
)

// RunSummaries reports per-day aggregates over finalized runs only
// (my_status = 3). One grouped query; nothing is aggregated in process.
func (rc *RequestController) RunSummaries(c *fiber.Ctx) error {
	query := rc.DB.Table("requests").
		Select(`CAST(date(requests.pickup_date) AS TEXT) AS date,
			COUNT(*) AS total_runs,
			SUM(CASE WHEN requests.status = 'completed' THEN 1 ELSE 0 END) AS total_runs_completed,
			SUM(requests.price) AS total_amount,
			SUM(CASE WHEN requests.status = 'completed' THEN requests.price ELSE 0 END) AS total_amount_completed`).
		Joins("LEFT JOIN branches ON requests.branch_id = branches.id").
		Where("requests.my_status = ?", requestModel.MyStatusFinalized)

	year := c.QueryInt("year")
	month := c.QueryInt("month")
	// time.Date would normalize month 13 into next January; reject instead.
	if month < 0 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid month filter",
		})
	}
	switch {
	case year > 0 && month > 0:
		start, end := utils.MonthRange(year, month)
		query = query.Where("requests.pickup_date >= ? AND requests.pickup_date < ?", start, end)
	case year > 0:
		start, end := utils.YearRange(year)
		query = query.Where("requests.pickup_date >= ? AND requests.pickup_date < ?", start, end)
	case month > 0:
		// Month without a year resolves against the current year.
		start, end := utils.MonthRange(time.Now().Year(), month)
		query = query.Where("requests.pickup_date >= ? AND requests.pickup_date < ?", start, end)
	}

	if clientID := c.QueryInt("clientId"); clientID > 0 {
		query = query.Where("branches.client_id = ?", clientID)
	}
	if branchID := c.QueryInt("branchId"); branchID > 0 {
		query = query.Where("requests.branch_id = ?", branchID)
	}

	var summaries []requestTypes.RunSummary
	err := query.
		Group("date(requests.pickup_date)").
		Order("date DESC").
		Scan(&summaries).Error
	if err != nil {
		logger.Error("Failed to fetch run summaries", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching run summaries",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Run summaries retrieved successfully",
		Data:    summaries,
	})
}
