package tilemap

var defaultMaze = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####....#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#............##............#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"###.##.#####.##.#####.##.###",
	"###.##.#####.##.#####.##.###",
	"#...##................##...#",
	"#.####.##.##    ##.##.####.#",
	"#.####.##.#      #.##.####.#",
	"#......##.#      #.##......#",
	"#.####.##.#      #.##.####.#",
	"#.####.##.########.##.####.#",
	"#...##................##...#",
	"###.##.#####.##.#####.##.###",
	"###.##.#####.##.#####.##.###",
	"#......##....##....##......#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####....#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#............##............#",
	"############################",
}
