package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CoversController serves catalog cover images from the local cache.
type CoversController struct {
	cache   CoverCache
	catalog CatalogReader
}

// NewCoversController creates a new CoversController.
func NewCoversController(cache CoverCache, catalog CatalogReader) *CoversController {
	return &CoversController{
		cache:   cache,
		catalog: catalog,
	}
}

// GetCover handles GET /api/books/:id/cover
// Falls back to redirecting to the source image when it cannot be cached.
func (cc *CoversController) GetCover(c *gin.Context) {
	book, err := cc.catalog.GetBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}
	if book == nil || book.CoverURL == "" {
		c.Status(http.StatusNotFound)
		return
	}

	cachePath, err := cc.cache.GetCover(c.Request.Context(), book.ID, book.CoverURL)
	if err != nil || cachePath == "" {
		if err != nil {
			log.Printf("Cover cache miss for book %s: %v", book.ID, err)
		}
		c.Redirect(http.StatusTemporaryRedirect, book.CoverURL)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.File(cachePath)
}
