// Package core holds the drawing types shared by the layout planner, the
// renderer and the terminal backends.
package core
