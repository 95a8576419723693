package handler

import (
	"time"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/infra/mapfeature"
	"nagarsetu/internal/usecase"
)

// ReportResponse is the JSON view of a waste report
type ReportResponse struct {
	ID                string    `json:"id"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Address           string    `json:"address"`
	Status            string    `json:"status"`
	Category          string    `json:"category,omitempty"`
	Remarks           string    `json:"remarks,omitempty"`
	BeforeImageURL    string    `json:"beforeImageUrl,omitempty"`
	AfterImageURL     string    `json:"afterImageUrl,omitempty"`
	AuthorityComments string    `json:"authorityComments,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// RoutePointResponse is one stop of a planned route
type RoutePointResponse struct {
	Order     int             `json:"order"`
	ID        string          `json:"id"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Address   string          `json:"address"`
	IsStart   bool            `json:"isStart"`
	Report    *ReportResponse `json:"report,omitempty"`
}

// RouteResponse is the JSON view of a planned route
type RouteResponse struct {
	OrderedPoints    []RoutePointResponse `json:"orderedPoints"`
	TotalDistanceKm  float64              `json:"totalDistanceKm"`
	EstimatedMinutes int                  `json:"estimatedMinutes"`
	StopCount        int                  `json:"stopCount"`
	Converged        bool                 `json:"converged"`
	Passes           int                  `json:"passes"`
	Improved         bool                 `json:"improved"`

	// BBox is [minLng, minLat, maxLng, maxLat], as in GeoJSON.
	BBox []float64 `json:"bbox,omitempty"`
}

func toReportResponse(report *entity.Report) *ReportResponse {
	if report == nil {
		return nil
	}

	return &ReportResponse{
		ID:                report.ID.String(),
		ImageURL:          report.ImageURL,
		Latitude:          report.Latitude,
		Longitude:         report.Longitude,
		Address:           report.Address,
		Status:            report.Status.String(),
		Category:          report.Category,
		Remarks:           report.Remarks,
		BeforeImageURL:    report.BeforeImageURL,
		AfterImageURL:     report.AfterImageURL,
		AuthorityComments: report.AuthorityComments,
		CreatedAt:         report.CreatedAt,
		UpdatedAt:         report.UpdatedAt,
	}
}

func toReportResponses(reports []*entity.Report) []*ReportResponse {
	result := make([]*ReportResponse, 0, len(reports))
	for _, report := range reports {
		result = append(result, toReportResponse(report))
	}

	return result
}

func toRouteResponse(output *usecase.OptimizeRouteOutput) *RouteResponse {
	route := output.Route

	points := make([]RoutePointResponse, 0, len(route.OrderedPoints))
	for i, p := range route.OrderedPoints {
		points = append(points, RoutePointResponse{
			Order:     i,
			ID:        p.ID,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Address:   p.Address,
			IsStart:   p.IsStart,
			Report:    toReportResponse(p.Report),
		})
	}

	resp := &RouteResponse{
		OrderedPoints:    points,
		TotalDistanceKm:  route.TotalDistanceKm,
		EstimatedMinutes: route.EstimatedMinutes,
		StopCount:        output.StopCount,
		Converged:        route.Converged,
		Passes:           route.Passes,
		Improved:         route.Improved,
	}

	if bound, ok := mapfeature.Bounds(route); ok {
		resp.BBox = []float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()}
	}

	return resp
}
