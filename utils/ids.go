package utils

import (
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

var node *snowflake.Node

func init() {
	n, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	node = n
}

// NewID returns a time-ordered id for top-level entities (products,
// budgets, calculations). Monotonic within a session.
func NewID() string {
	return node.Generate().String()
}

// NewItemID returns an id for line items inside an entity.
func NewItemID() string {
	return uuid.New().String()
}
