package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lavka/internal/domain"
	"lavka/internal/repository"
	"lavka/internal/service"
)

type Server struct {
	engine    *gin.Engine
	customers *service.CustomerService
	products  *service.ProductService
	orders    *service.OrderService
}

func NewServer(customers *service.CustomerService, products *service.ProductService, orders *service.OrderService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, customers: customers, products: products, orders: orders}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/customers", s.registerCustomer)
		v1.POST("/products", s.createProduct)
		v1.POST("/orders", s.createOrder)
		v1.GET("/reports/orders-by-date", s.ordersByDate)
	}
}

// Customer handlers
type registerCustomerReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// @Summary Register customer
// @Tags customers
// @Accept json
// @Produce json
// @Param input body registerCustomerReq true "Customer"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func (s *Server) registerCustomer(c *gin.Context) {
	var req registerCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cust, err := s.customers.Register(c, domain.Customer{
		Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address,
	})
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cust)
}

type createProductReq struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body createProductReq true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Create(c, domain.Product{Name: req.Name, Price: req.Price})
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Order handlers
type orderProductRef struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type createOrderReq struct {
	CustomerEmail string            `json:"customer_email"`
	Products      []orderProductRef `json:"products"`
	Date          string            `json:"date"`
}

// @Summary Place order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o := domain.Order{
		Customer: domain.Customer{Email: req.CustomerEmail},
		Date:     req.Date,
	}
	for _, p := range req.Products {
		o.Products = append(o.Products, domain.Product{Name: p.Name, Price: p.Price})
	}
	created, err := s.orders.Place(c, o)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Orders per date
// @Tags reports
// @Produce json
// @Success 200 {array} repository.DateCount
// @Router /reports/orders-by-date [get]
func (s *Server) ordersByDate(c *gin.Context) {
	counts, err := s.orders.OrdersByDate(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if counts == nil {
		counts = []repository.DateCount{}
	}
	c.JSON(http.StatusOK, counts)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCustomer), errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
