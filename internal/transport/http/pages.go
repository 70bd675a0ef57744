package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// frontendPages maps /pages/:page names to HTML files under the static root.
var frontendPages = map[string]string{
	"home":       "home.html",
	"products":   "products.html",
	"product":    "product.html",
	"cart":       "cart.html",
	"order":      "order.html",
	"shipping":   "shippinginfo.html",
	"tryon":      "tryon.html",
	"experience": "experience.html",
	"bmi":        "bmi.html",
	"wishlist":   "wishlist.html",
}

type PageHandler struct {
	root string
}

func NewPageHandler(root string) *PageHandler {
	return &PageHandler{root: root}
}

func (h *PageHandler) Landing(c *gin.Context) {
	c.Redirect(http.StatusFound, "/pages/home")
}

func (h *PageHandler) Page(c *gin.Context) {
	filename, ok := frontendPages[strings.ToLower(c.Param("page"))]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(filepath.Join(h.root, filename))
}
