package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Node ids per binary. Two processes sharing a node id can mint duplicate ids
// within the same millisecond.
const (
	NodeServer int64 = 1
	NodeWorker int64 = 2
	NodeAdmin  int64 = 3
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
// IDs are time-ordered, which the chat and feed cursors rely on.
func New() int64 {
	return node.Generate().Int64()
}
