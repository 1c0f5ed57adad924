package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 未定義のプロパティは400にする。その後validateタグを検証。
func bindStrict(c echo.Context, dst interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return usecase.NewHTTPError(http.StatusBadRequest, "request body required")
		}
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			return usecase.NewHTTPError(http.StatusBadRequest, "property "+strings.Trim(field, `"`)+" should not exist")
		}
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	// JSONは1つだけ。後ろに何か続いていたら400。
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := c.Validate(dst); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// PATCHで「キーなし」と「null」を区別する文字列
type nullableString struct {
	set   bool
	value *string
}

func (n *nullableString) UnmarshalJSON(b []byte) error {
	n.set = true
	if string(b) == "null" {
		n.value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.value = &s
	return nil
}

// nullが明示されたときだけtrue
func (n nullableString) isNull() bool {
	return n.set && n.value == nil
}

// echo自身のエラー（404 route, 405, 429など）も {"error": ...} で返す
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "internal error"

	var ee *echo.HTTPError
	if errors.As(err, &ee) {
		status = ee.Code
		if s, ok := ee.Message.(string); ok {
			msg = s
		} else {
			msg = http.StatusText(status)
		}
	} else if he, ok := usecase.AsHTTPError(err); ok {
		status = he.Status
		msg = he.Message
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrorResponse{Error: msg})
}
