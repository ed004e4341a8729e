package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catalog-service/internal/model"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/store"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListProducts handles retrieving the product sequence with optional filtering
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackStoreOperation("load")(time.Now())
	doc, err := store.Get().Load()
	if err != nil {
		log.Error("Failed to load catalog", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	products := doc.Products

	// Substring match on name/brand, case-insensitive
	if q := c.QueryParam("q"); q != "" {
		needle := strings.ToLower(q)
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(strings.ToLower(p.Brand), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if brand := c.QueryParam("brand"); brand != "" {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.Brand == brand {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if avail := c.QueryParam("available"); avail != "" {
		available, err := strconv.ParseBool(avail)
		if err == nil {
			filtered := make([]model.Product, 0, len(products))
			for _, p := range products {
				if p.Available == available {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		} else {
			log.Warn("Invalid available parameter", zap.String("value", avail), zap.Error(err))
		}
	}

	prometheus.RecordCatalogOperation("list")
	prometheus.UpdateCatalogSize(len(doc.Products))
	log.Info("Products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles creating a new product. The store assigns the id;
// any id in the payload is ignored.
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.Product
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	if !req.Valid() {
		log.Warn("Incomplete product payload",
			zap.String("brand", req.Brand),
			zap.String("name", req.Name),
			zap.Int("variants", len(req.Variants)))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "brand, name and at least one complete variant are required"})
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())
	var created model.Product
	_, err := store.Get().Update(func(doc *store.Document) error {
		req.ID = store.NextID(doc.Products)
		doc.Products = append(doc.Products, req)
		created = req
		return nil
	})
	if err != nil {
		log.Error("Failed to create product", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create product"})
	}

	prometheus.RecordCatalogOperation("create")
	log.Info("Product created",
		zap.Int("product_id", created.ID),
		zap.String("brand", created.Brand),
		zap.String("name", created.Name))
	return c.JSON(http.StatusOK, created)
}

// UpdateProduct merges the payload onto the existing record. The path id
// always wins over any id in the body.
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid product id", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Error("Failed to read request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())
	var updated model.Product
	_, err = store.Get().Update(func(doc *store.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != id {
				continue
			}
			merged := doc.Products[i]
			if err := json.Unmarshal(raw, &merged); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid request data")
			}
			merged.ID = id
			doc.Products[i] = merged
			updated = merged
			return nil
		}
		return store.ErrNotFound
	})
	if err == store.ErrNotFound {
		log.Warn("Product not found for update", zap.Int("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		log.Error("Invalid update payload", zap.Int("product_id", id))
		return c.JSON(he.Code, echo.Map{"error": he.Message})
	}
	if err != nil {
		log.Error("Failed to update product", zap.Int("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update product"})
	}

	prometheus.RecordCatalogOperation("update")
	log.Info("Product updated", zap.Int("product_id", id), zap.String("name", updated.Name))
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product by id. Deleting a missing id is a
// no-op success, matching the stored document's idempotent delete.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid product id", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())
	_, err = store.Get().Update(func(doc *store.Document) error {
		kept := doc.Products[:0]
		for _, p := range doc.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		doc.Products = kept
		return nil
	})
	if err != nil {
		log.Error("Failed to delete product", zap.Int("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete product"})
	}

	prometheus.RecordCatalogOperation("delete")
	log.Info("Product deleted", zap.Int("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// ToggleProduct flips a product's availability flag
func ToggleProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid product id", zap.String("id", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())
	var toggled model.Product
	_, err = store.Get().Update(func(doc *store.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				doc.Products[i].Available = !doc.Products[i].Available
				toggled = doc.Products[i]
				return nil
			}
		}
		return store.ErrNotFound
	})
	if err == store.ErrNotFound {
		log.Warn("Product not found for toggle", zap.Int("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err != nil {
		log.Error("Failed to toggle product", zap.Int("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to toggle product"})
	}

	prometheus.RecordCatalogOperation("toggle")
	log.Info("Product availability toggled",
		zap.Int("product_id", id),
		zap.Bool("available", toggled.Available))
	return c.JSON(http.StatusOK, toggled)
}

// ReorderProducts replaces the stored sequence verbatim with the posted
// array. The caller is trusted to send the same set of records.
func ReorderProducts(c echo.Context) error {
	log := logger.FromContext(c)

	var products []model.Product
	if err := c.Bind(&products); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())
	_, err := store.Get().Update(func(doc *store.Document) error {
		doc.Products = products
		return nil
	})
	if err != nil {
		log.Error("Failed to reorder products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reorder products"})
	}

	prometheus.RecordCatalogOperation("reorder")
	log.Info("Products reordered", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
