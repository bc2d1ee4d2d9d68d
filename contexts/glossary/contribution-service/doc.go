// Package contributionservice implements the Contribution Lifecycle inside
// the glossary context.
//
// The module tracks each definition candidate's status per contributing
// user (draft -> pending -> published|rejected), partitions a user's
// contributions into status buckets, and handles deletion. Published and
// rejected are terminal in current scope.
package contributionservice
