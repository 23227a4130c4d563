// Package counter holds the application state and the only way to change it.
//
// A Store owns the counter value. A Dispatcher is the single gateway that
// applies an Action to the Store under its exclusive lock; readers take the
// shared lock through Store.Value. Nothing outside this package can mutate
// the value directly.
package counter
