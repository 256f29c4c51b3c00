/*
Package badge evaluates seller achievement badges and reputation tiers.

The badge catalog is a fixed, immutable list of definitions, each
pairing an unlock predicate with a progress formula over the seller's
current metrics. Evaluation is idempotent: badges are recomputed from
scratch on every call and the engine keeps no unlock history of its
own. Tier placement is a pure function of trailing revenue.
*/
package badge
