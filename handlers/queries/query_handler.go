package handlers

import (
	"atlas/configs/logconfig"
	"atlas/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type QueryHandler struct {
	queryService services.IQueryService
}

func NewQueryHandler() *QueryHandler {
	return &QueryHandler{
		queryService: services.NewQueryService(),
	}
}

// AllQueries — yedi projeksiyonu tek context içinde şablona taşır.
func (h *QueryHandler) AllQueries(c *fiber.Ctx) error {
	overview, err := h.queryService.GetOverview(c.Context())
	if err != nil {
		logconfig.Log.Error("Sorgu özeti hazırlanamadı", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "sorgular çalıştırılamadı")
	}

	return c.Render("orm_queries", fiber.Map{
		"AllCountryAsc":      overview.AllCountryAsc,
		"AllCountryDesc":     overview.AllCountryDesc,
		"AllCountryLimit":    overview.AllCountryLimit,
		"AllCountryDistinct": overview.AllCountryDistinct,
		"AllCountryBetween":  overview.AllCountryBetween,
		"AllCountrySelect":   overview.AllCountrySelect,
		"AllCountryCount":    overview.AllCountryCount,
	})
}

func (h *QueryHandler) InsertCreateQueries(c *fiber.Ctx) error {
	record, err := h.queryService.CreateCountry(c.Context(), "Test 4", "XT", 333)
	if err != nil {
		return err
	}

	logconfig.SLog.Debugw("Ülke eklendi", "country_id", record.ID)

	// FIXME: şablon adı eksik; bu uç düzeltilene kadar her çağrıda hata döner.
	return c.Render("", fiber.Map{})
	// return c.Render("insert_create_queries", fiber.Map{"Country": record})
}

func (h *QueryHandler) UpdateQueries(c *fiber.Ctx) error {
	record, err := h.queryService.CreateCountry(c.Context(), "Test 1", "T", 303)
	if err != nil {
		return err
	}

	return c.Render("insert_create_queries", fiber.Map{"Country": record})
}

func (h *QueryHandler) DeleteQueries(c *fiber.Ctx) error {
	record, err := h.queryService.CreateCountry(c.Context(), "Test 1", "T", 303)
	if err != nil {
		return err
	}

	return c.Render("insert_create_queries", fiber.Map{"Country": record})
}
