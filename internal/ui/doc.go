// Package ui contains the Bubble Tea program that hosts the command menu.
// The Model owns a nav.Navigator and does little more than translate key
// presses and draw what the navigator exposes.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses, window resizes, selected
//     commands).
//   - Key presses are matched against KeyMap. Up, down and enter become
//     nav.Key values and are handed to the navigator; back and quit are host
//     concerns handled here.
//   - When the navigator yields a command, it is wrapped by the command bus
//     into a command.SelectedMsg. The handler for that message records the
//     command and quits the program; the caller reads it back via Selected.
//
// Rendering:
//   - View draws a floating, bordered frame centred on the screen whose size is
//     a percentage of the terminal. The frame title is the menu title followed
//     by the labels of the entered sub-menus.
//   - Only the rows that fit are drawn; the viewport offset follows the cursor.
package ui
