/*
Package pairup holds the domain records of the pair-up notification backend
(teams, users, issued pairings) and thin stores over the table accessor.
Notification delivery itself lives elsewhere; this package only persists.
*/
package pairup
