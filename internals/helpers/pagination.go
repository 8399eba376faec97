package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

var (
	DefaultOpts = PageOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PageOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PageParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

func ParsePage(c *fiber.Ctx, opts PageOptions) PageParams {
	p := PageParams{
		Page:      DefaultPage,
		PerPage:   opts.DefaultPerPage,
		SortOrder: "asc",
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 {
		if v > opts.MaxPerPage {
			v = opts.MaxPerPage
		}
		p.PerPage = v
	}
	p.SortBy = strings.TrimSpace(c.Query("sort_by"))
	if strings.EqualFold(c.Query("order"), "desc") {
		p.SortOrder = "desc"
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func PageMeta(p PageParams, total int64) fiber.Map {
	pages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if pages < 1 {
		pages = 1
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": pages,
	}
}
