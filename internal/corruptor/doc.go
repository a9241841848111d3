// Package corruptor simulates a ransomware-style attack against a stored
// record by destroying a caller-chosen number of fragments and shares, so
// protect/recover's resilience to partial loss can be exercised end to end.
package corruptor
