package drawml

// presetGuides maps the names of the built-in guides of preset shape
// geometry to their definitions. A definition is either a literal number or
// a deferred guide formula referencing w, h, or other presets; both forms
// resolve through the same chain as shape-local guides. The table is fixed
// at process start and never mutated.
var presetGuides = map[string]string{
	"3cd4": "16200000.0", // 3/4 of a circle
	"3cd8": "8100000.0",  // 3/8 of a circle
	"5cd8": "13500000.0", // 5/8 of a circle
	"7cd8": "18900000.0", // 7/8 of a circle
	"cd2":  "10800000.0", // 1/2 of a circle
	"cd4":  "5400000.0",  // 1/4 of a circle
	"cd8":  "2700000.0",  // 1/8 of a circle

	"t": "0",     // shape top edge
	"b": "val h", // shape bottom edge
	"l": "0",     // shape left edge
	"r": "val w", // shape right edge

	"vc":  "*/ h 1.0 2.0", // vertical center
	"hc":  "*/ w 1.0 2.0", // horizontal center
	"hd2": "*/ h 1.0 2.0",
	"hd3": "*/ h 1.0 3.0",
	"hd4": "*/ h 1.0 4.0",
	"hd5": "*/ h 1.0 5.0",
	"hd6": "*/ h 1.0 6.0",
	"hd8": "*/ h 1.0 8.0",
	"wd2": "*/ w 1.0 2.0",
	"wd3": "*/ w 1.0 3.0",
	"wd4": "*/ w 1.0 4.0",
	"wd5": "*/ w 1.0 5.0",
	"wd6": "*/ w 1.0 6.0",
	"wd8": "*/ w 1.0 8.0",

	"wd10": "*/ w 1.0 10.0",

	"ls":    "max w h", // longest side
	"ss":    "min w h", // shortest side
	"ssd2":  "*/ ss 1.0 2.0",
	"ssd4":  "*/ ss 1.0 4.0",
	"ssd6":  "*/ ss 1.0 6.0",
	"ssd8":  "*/ ss 1.0 8.0",
	"ssd16": "*/ ss 1.0 16.0",
	"ssd32": "*/ ss 1.0 32.0",
}
