// Package board provides a minesweeper board with a fixed mine layout.
//
// A board plays the role of the game: it knows where the mines are and answers,
// for a revealed cell, how many of its neighbours are mines.
// Boards are either built from a list of mines or parsed from a text description:
//
//     c a 3x3 board with a single mine
//     p board 3 3
//     ...
//     ...
//     ..*
//
// Lines starting with 'c' are comments. The header gives the height and the width of the board,
// then each line describes a row, '.' being a safe cell and '*' a mine.
package board
