/*
Package store defines the accessor contract for typed, table-scoped access to
a partition/row-keyed entity store.

Implementations:
  - dynamo: DynamoDB implementation
  - memory: in-memory implementation for testing accessor callers
*/
package store
