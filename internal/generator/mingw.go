package generator

// MinGW generates a GNU makefile for the MinGW gcc toolchain.
var MinGW = register(&Generator{
	Name:         "mingw",
	Title:        "MinGW",
	Make:         DialectGNU,
	FileName:     "Makefile.MinGW",
	ForwardSlash: true,
	VPath:        VPathGNU,
	LineEnd:      `\`,
	ObjSuffix:    ".o",
	Rules:        mingwRules(),
	GateLibRule:  true,
	Lines: concat(
		header(DialectGNU, "MinGW", "Makefile.MinGW", opensslRootMinGW),
		[]string{
			"MINGW_ROOT   = $(realpath $(MINGW32))",
			"",
			"CC      = gcc",
			"CFLAGS  = " + gccCFlags + " " + commonCFlags,
			"LDFLAGS = " + gccLDFlags,
			"OBJ_DIR = MinGW_obj",
			"",
			"ifeq ($(USE_CRT_DEBUG),1)",
			"  CFLAGS  += -O0 -ggdb",
			"else",
			"  CFLAGS  += -O2 -g",
			"  LDFLAGS += -s",
			"endif",
			"",
			"ifeq ($(USE_OPENSSL),1)",
			"  CFLAGS  += " + opensslCFlags,
			"  EX_LIBS += " + opensslGCCExLibs,
			"endif",
			"",
			"EX_LIBS += " + gccExLibs,
			"",
			"SOURCES = %s",
			"",
			`OBJECTS = $(addprefix $(OBJ_DIR)/, \`,
			"            $(notdir $(SOURCES:.c=.o)))",
			"",
			"GENERATED = config.h",
			"",
			"all: $(GENERATED) $(OBJ_DIR) $(PROGRAM)",
			"\t$(call green_msg, Welcome to $(PROGRAM) (MinGW).)",
			"",
			"$(OBJ_DIR):",
			"\t- mkdir $(OBJ_DIR)",
			"",
			"$(PROGRAM): $(OBJECTS) #! maybe add a '$(OBJ_DIR)/foo.res' here?",
			"\t$(call green_msg, Linking $@)",
			"\t$(CC) $(LDFLAGS) -o $@ $^ $(EX_LIBS) > $(@:.exe=.map)",
			"\t@echo",
			"",
			"%c",
			"$(OBJ_DIR)/%.res: %.rc",
			"\twindres --target=%T -D__MINGW32__ -O COFF -o $@ $<",
			"\t@echo",
			"",
			"%l",
			"clean:",
			"\trm -f $(OBJECTS)",
			"\t- rmdir $(OBJ_DIR)",
			"",
			"vclean realclean: clean",
			"\trm -f .depend.MinGW $(PROGRAM) $(PROGRAM:.exe=.map) $(GENERATED)",
			"",
		},
		gnuConfig(),
		[]string{""},
		depend("MinGW", "$(CC)"),
	),
})

func mingwRules() Rules {
	r := gccRules()
	r.Res = "$(OBJ_DIR)/%.res: %.rc\n\twindres --target=%T -D__MINGW32__ -O COFF -o $@ $<\n\t@echo\n"
	r.Lib = "#\n#! Use $(OBJECTS) or $(LIB_OBJ) for $(PROGRAM) or libfoo.a?\n#\n" +
		"libfoo.a: $(LIB_OBJ)\n\trm -f $@\n\tar rs $@ $^\n\t@echo\n"
	return r
}
