/*
Package reconnect implements the retry/backoff policy for a dropped
transport connection.

The policy is a small state machine (Disconnected, Connecting, Connected,
GaveUp) owned by whatever component holds the actual connection. The owner
reports lifecycle events through OnOpen, OnClose and OnError; the policy
decides whether and when to schedule a retry, and fires the owner's connect
callback when the backoff delay elapses.

Retries back off exponentially: base_interval * 2^min(attempt, cap). A
normal closure never schedules a retry, and once the attempt budget is
consumed the policy parks in GaveUp and surfaces ErrExhausted to the owner
instead of retrying forever.

The scheduled retry is the only asynchronous element in the runtime, and it
is cancellable: an explicit disconnect clears any pending retry so a stale
timer cannot fire after the owner has moved on.
*/
package reconnect
