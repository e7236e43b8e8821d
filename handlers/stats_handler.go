package handlers

import (
	"sort"

	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type StatsHandler struct {
	store storage.Storage
}

func NewStatsHandler(store storage.Storage) *StatsHandler {
	return &StatsHandler{store: store}
}

type productStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	LowStock  int `json:"lowStock"`
}

type orderStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
}

type revenueStats struct {
	Total string `json:"total"`
}

type customerStats struct {
	Total int `json:"total"`
}

type shopStats struct {
	Products         productStats     `json:"products"`
	Orders           orderStats       `json:"orders"`
	Revenue          revenueStats     `json:"revenue"`
	Customers        customerStats    `json:"customers"`
	RecentOrders     []models.Order   `json:"recentOrders"`
	LowStockProducts []models.Product `json:"lowStockProducts"`
}

// GetStats - GET /api/shop/stats
// Dashboard aggregate over products, orders and customers. The low-stock
// bucket counts stock <= threshold, so out-of-stock products are included.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	products, err := h.store.GetProducts()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des statistiques.", err)
	}
	orders, err := h.store.GetOrders()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des statistiques.", err)
	}
	customers, err := h.store.GetCustomers()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des statistiques.", err)
	}

	stats := shopStats{
		Products:  productStats{Total: len(products)},
		Orders:    orderStats{Total: len(orders)},
		Customers: customerStats{Total: len(customers)},
	}

	lowStock := make([]models.Product, 0)
	for _, p := range products {
		if p.Published {
			stats.Products.Published++
		}
		if p.Stock <= p.LowStockThreshold {
			stats.Products.LowStock++
			lowStock = append(lowStock, p)
		}
	}
	sort.SliceStable(lowStock, func(i, j int) bool { return lowStock[i].Stock < lowStock[j].Stock })
	if len(lowStock) > 10 {
		lowStock = lowStock[:10]
	}
	stats.LowStockProducts = lowStock

	revenue := decimal.Zero
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			stats.Orders.Pending++
		case models.OrderStatusProcessing:
			stats.Orders.Processing++
		case models.OrderStatusDelivered:
			stats.Orders.Completed++
		}
		if o.PaymentStatus == models.PaymentStatusPaid {
			if total, err := decimal.NewFromString(o.Total); err == nil {
				revenue = revenue.Add(total)
			}
		}
	}
	stats.Revenue.Total = revenue.StringFixed(2)

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentOrders = recent

	return c.JSON(stats)
}
