package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contapyme/contapyme/internal/adapter/api/dto"
	"github.com/contapyme/contapyme/internal/domain/sii"
	"github.com/contapyme/contapyme/pkg/auth"
	"github.com/contapyme/contapyme/pkg/logger"
)

// maxCertificateSize limita el tamaño del archivo PKCS#12 aceptado
const maxCertificateSize = 1 << 20

// CertificateController gestiona el certificado digital SII de la empresa
type CertificateController struct {
	certs  sii.CertificateRepository
	logger logger.Logger
}

// NewCertificateController crea una nueva instancia de CertificateController
func NewCertificateController(certs sii.CertificateRepository, logger logger.Logger) *CertificateController {
	return &CertificateController{certs: certs, logger: logger}
}

// Upload registra o reemplaza el certificado digital de la empresa
// @Summary Cargar certificado digital
// @Description Recibe un archivo PKCS#12 con su contraseña; se valida la apertura y la vigencia antes de guardarlo
// @Tags sii
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param file formData file true "Archivo .pfx o .p12"
// @Param name formData string true "Nombre descriptivo"
// @Param password formData string true "Contraseña del certificado"
// @Success 201 {object} sii.Certificate
// @Failure 400 {object} dto.ErrorResponse
// @Router /sii/certificate [post]
func (c *CertificateController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "el archivo de certificado es obligatorio", err.Error()))
		return
	}
	if header.Size > maxCertificateSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "el archivo excede el tamaño máximo permitido", ""))
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "no se pudo leer el archivo", err.Error()))
		return
	}
	defer file.Close()

	pfxData, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "no se pudo leer el archivo", err.Error()))
		return
	}

	name := ctx.PostForm("name")
	if name == "" {
		name = header.Filename
	}

	cert, err := sii.NewCertificate(auth.CurrentBusinessID(ctx), name, pfxData, ctx.PostForm("password"))
	if err != nil {
		respondError(ctx, c.logger, "certificate.upload", err)
		return
	}

	if err := c.certs.Save(ctx, cert); err != nil {
		respondError(ctx, c.logger, "certificate.upload", err)
		return
	}

	c.logger.Info("certificado digital registrado", "business_id", cert.BusinessID, "not_after", cert.NotAfter)
	ctx.JSON(http.StatusCreated, cert)
}

// Get devuelve los metadatos del certificado vigente
// @Summary Obtener certificado digital
// @Description Devuelve los metadatos del certificado registrado; el binario nunca se expone
// @Tags sii
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} sii.Certificate
// @Failure 404 {object} dto.ErrorResponse
// @Router /sii/certificate [get]
func (c *CertificateController) Get(ctx *gin.Context) {
	cert, err := c.certs.FindByBusiness(ctx, auth.CurrentBusinessID(ctx))
	if err != nil {
		respondError(ctx, c.logger, "certificate.get", err)
		return
	}
	ctx.JSON(http.StatusOK, cert)
}
