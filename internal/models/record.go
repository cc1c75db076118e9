package models

import "time"

// DeliveryRequest is a synthetic supplier-to-site trip used by the batch driver.
type DeliveryRequest struct {
	ID       string
	Supplier Supplier
	SiteName string
	Site     Location
	Hour     int
	Season   Season
}

// EstimateRecord is the flat row written to report sinks for one request.
type EstimateRecord struct {
	Timestamp         int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	RequestID         string  `json:"requestId" parquet:"name=requestId,type=BYTE_ARRAY,convertedtype=UTF8"`
	SupplierID        string  `json:"supplierId" parquet:"name=supplierId,type=BYTE_ARRAY,convertedtype=UTF8"`
	SiteName          string  `json:"siteName" parquet:"name=siteName,type=BYTE_ARRAY,convertedtype=UTF8"`
	SupplierLat       float64 `json:"supplierLat" parquet:"name=supplierLat,type=DOUBLE"`
	SupplierLon       float64 `json:"supplierLon" parquet:"name=supplierLon,type=DOUBLE"`
	SiteLat           float64 `json:"siteLat" parquet:"name=siteLat,type=DOUBLE"`
	SiteLon           float64 `json:"siteLon" parquet:"name=siteLon,type=DOUBLE"`
	Hour              int32   `json:"hour" parquet:"name=hour,type=INT32"`
	Season            string  `json:"season" parquet:"name=season,type=BYTE_ARRAY,convertedtype=UTF8"`
	Matrix            string  `json:"matrix" parquet:"name=matrix,type=BYTE_ARRAY,convertedtype=UTF8"`
	Distance          float64 `json:"distance" parquet:"name=distance,type=DOUBLE"`
	AverageTime       int64   `json:"averageTime" parquet:"name=averageTime,type=INT64"`
	MinTime           int64   `json:"minTime" parquet:"name=minTime,type=INT64"`
	MaxTime           int64   `json:"maxTime" parquet:"name=maxTime,type=INT64"`
	StandardDeviation int64   `json:"standardDeviation" parquet:"name=standardDeviation,type=INT64"`
	Confidence95Min   int64   `json:"confidence95Min" parquet:"name=confidence95Min,type=INT64"`
	Confidence95Max   int64   `json:"confidence95Max" parquet:"name=confidence95Max,type=INT64"`
	MedianTime        int64   `json:"medianTime" parquet:"name=medianTime,type=INT64"`
	P90Time           int64   `json:"p90Time" parquet:"name=p90Time,type=INT64"`
	Simulations       int64   `json:"simulations" parquet:"name=simulations,type=INT64"`
	Error             string  `json:"error" parquet:"name=error,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// NewEstimateRecord flattens a request and its summary. A non-nil estimateErr
// is recorded instead of the summary fields.
func NewEstimateRecord(req DeliveryRequest, summary SimulationSummary, estimateErr error, at time.Time) EstimateRecord {
	rec := EstimateRecord{
		Timestamp:   at.Unix(),
		RequestID:   req.ID,
		SupplierID:  req.Supplier.ID,
		SiteName:    req.SiteName,
		SupplierLat: req.Supplier.Coordinates.Lat,
		SupplierLon: req.Supplier.Coordinates.Lon,
		SiteLat:     req.Site.Lat,
		SiteLon:     req.Site.Lon,
		Hour:        int32(req.Hour),
		Season:      string(req.Season),
	}
	if estimateErr != nil {
		rec.Error = estimateErr.Error()
		return rec
	}
	rec.Matrix = summary.Matrix
	rec.Distance = summary.Distance
	rec.AverageTime = int64(summary.AverageTime)
	rec.MinTime = int64(summary.MinTime)
	rec.MaxTime = int64(summary.MaxTime)
	rec.StandardDeviation = int64(summary.StandardDeviation)
	rec.Confidence95Min = int64(summary.Confidence95.Min)
	rec.Confidence95Max = int64(summary.Confidence95.Max)
	rec.MedianTime = int64(summary.MedianTime)
	rec.P90Time = int64(summary.P90Time)
	rec.Simulations = int64(summary.Simulations)
	return rec
}
