/* models.go
 * This file contain the structs and helper functions that are used by api consumers
 * Authors: Zachary Bower
 */

package api

// PickReport represents the outcome of grading one user's picks for the week
type PickReport struct {
	Correct   int
	Incorrect int
	Pushes    int
	Pending   int
}
