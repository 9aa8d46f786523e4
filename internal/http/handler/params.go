package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"academyhub.app/server/internal/http/middleware"
	"academyhub.app/server/internal/model"
)

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// pathIDs parses several id params, reporting the first bad one.
func pathIDs(c *gin.Context, names ...string) ([]int64, error) {
	ids := make([]int64, len(names))
	for i, name := range names {
		id, err := pathID(c, name)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func queryInt64Ptr(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

func queryStringPtr(c *gin.Context, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// pagination reads limit and offset. Bounds are applied by the services.
func pagination(c *gin.Context) (limit, offset int32, err error) {
	l, err := queryInt32(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	o, err := queryInt32(c, "offset")
	if err != nil {
		return 0, 0, err
	}
	return l, o, nil
}

func queryInt32(c *gin.Context, name string) (int32, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return int32(v), nil
}

// currentUser is set by middleware.RequireSession on every route that uses it.
func currentUser(c *gin.Context) *model.User {
	return middleware.GetUser(c.Request.Context())
}
