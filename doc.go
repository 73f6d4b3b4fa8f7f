/*
Package tablestore provides typed, table-scoped access to a partition/row-keyed
entity store for the pair-up notification backend.

Each accessor is bound at construction to one table, one entity shape and a
default partition key, and exposes point lookups, filtered scans,
paged/streamed enumeration and batched mutations. The store.Accessor interface
is the contract; store/dynamo implements it on DynamoDB and store/memory
implements it in memory for tests.

Basic usage:

	client, _ := dynamo.NewClient(ctx, accessKey, secretKey, region)
	teams, _ := dynamo.New[pairup.TeamInfo](ctx, logger, client, "pairup", pairup.TeamPartition, true)

	reg := tablestore.NewRegistry()
	_ = tablestore.Register[pairup.TeamInfo](reg, "teams", teams)

	accessor, _ := tablestore.AccessorFor[pairup.TeamInfo](reg, "teams")
	_ = accessor.InsertOrMerge(ctx, team)

The pairup package layers the domain stores (teams, users, pair-up records)
on top of the accessor, and cmd/pairadmin is the operational CLI.
*/
package tablestore
