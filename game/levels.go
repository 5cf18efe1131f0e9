package game

// DefaultLevel is played when no level file is configured.
const DefaultLevel = "30 21 " +
	"...o....d....................." +
	"... ....d....................." +
	"... ....d....................." +
	"... .. ......................." +
	".#. t.o  ....................#" +
	".##d..o .....................#" +
	".............................#" +
	".........p...................." +
	".............................." +
	".....................dd......." +
	".............................." +
	"....d........................." +
	"......................d......." +
	"..................ooo........." +
	".............................." +
	"........................##...." +
	".............................." +
	".......................###...." +
	".............................." +
	".............................." +
	"........t....................."
