// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/burim/garant-backend/internal/i18n"
	"github.com/burim/garant-backend/internal/services"
	"github.com/burim/garant-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), identity.ID, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, identity.ID, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Delete(c.Request.Context(), id, identity.ID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /products/upload-attachments
func (h *ProductHandler) UploadAttachments(c *gin.Context) {
	if _, ok := identityFromContext(c); !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form", err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No files provided", nil)
		return
	}

	lang := utils.GetLangFromContext(c)
	options := h.storageService.AttachmentUploadOptions()
	results := make([]*services.UploadResult, 0, len(files))

	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
			return
		}

		result, err := h.storageService.UploadFile(file, header, options)
		file.Close()
		if err != nil {
			logrus.WithError(err).WithField("filename", header.Filename).Error("Attachment upload failed")
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
			return
		}

		results = append(results, result)
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyFileUploadSuccess),
		"attachments": results,
	})
}
