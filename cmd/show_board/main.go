package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/reversi"
)

func main() {
	boardString := flag.String("board", "", "the board to show, rows separated by '/'")
	light := flag.Bool("light", false, "show legal moves for light instead of dark")
	flag.Parse()

	board, err := reversi.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	color := reversi.Dark
	if *light {
		color = reversi.Light
	}

	board.Print(color)
	fmt.Printf("%s to move: %s\n", color, reversi.Phase(board, color))
}
