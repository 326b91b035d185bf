// Package mongostore persists session records in a MongoDB collection,
// the canonical deployment for the billing backend's session layer.
//
// One document per session:
//
//	{
//	  "_id":        "<identifier>",   // session id, primary key
//	  "data":       BinData(...),     // encoded payload, opaque to the store
//	  "expires":    ISODate(...),     // absolute expiry, TTL-indexed
//	  "updated_at": ISODate(...)      // last write time
//	}
//
// Lookups filter on expires > now server-side, so expired documents read
// as absent from the moment they expire, regardless of when the TTL
// monitor physically removes them. Writes are single-document $set upserts
// keyed by _id; concurrent writers to one id resolve last-writer-wins.
//
// # Usage
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "billing")
//	if err != nil { ... }
//
//	store := mongostore.New(db)
//	if err := store.EnsureIndexes(ctx); err != nil {
//	    slog.Warn("sessions TTL index not created", "error", err)
//	}
//
//	manager := session.New(
//	    session.WithStore(store),
//	    session.WithCookieManager(cookieMgr),
//	)
//
// EnsureIndexes failures are safe to log and carry on from: the expiry
// filter keeps lookups correct and DeleteExpired can reclaim space from a
// scheduled job (see the session/cmd sweep helper).
package mongostore
