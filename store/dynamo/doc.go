/*
Package dynamo implements the store.Accessor interface on a single DynamoDB
table.

The table uses a fixed key schema: PK (partition key) and RK (row key), both
strings. Entities bind their own keys through the store.Entity interface, and
the accessor injects PK, RK and an UpdatedAt stamp into every written item, so
entity structs never declare the key attributes themselves.

Scans are segmented queries keyed on the partition: the accessor follows the
LastEvaluatedKey continuation chain, either accumulating the full result
(GetAll, GetWithFilter, GetByRowKeyFilter, GetAllModifiedBefore) or emitting
one models.Page per segment on a channel (StreamAll). Cancellation is observed
between segments on both paths.

Batched mutations use TransactWriteItems, which carries at most 100 actions:
inputs are split into ordered groups of up to 100, each group one atomic
round-trip. Groups are not atomic across each other; a mid-batch failure
leaves earlier groups committed.

Filters are opaque expression strings with placeholder values (models.Filter);
the accessor composes them but never parses them. The placeholders :pk, :rk
and :cutoff are reserved.

Every store failure is logged once with the injected zap logger and returned
wrapped, so callers keep the original error identity. Nothing is retried.
*/
package dynamo
