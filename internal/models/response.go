package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime is the currentTime field of every response, in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewResponse builds a ResponseModel with the given code and text.
func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

// NewOKResponse wraps data in a 200 response.
func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// EntryData wraps a single entry.
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ListData wraps a list of entries.
type ListData struct {
	List []interface{} `json:"list"`
}

// NewEntryResponse wraps a single entry in a 200 response.
func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry})
}

// NewListResponse wraps a list in a 200 response.
func NewListResponse(list []interface{}) ResponseModel {
	return NewOKResponse(ListData{List: list})
}
