package generator

// MSVC generates an Nmake makefile for Visual C++.
var MSVC = register(&Generator{
	Name:      "msvc",
	Title:     "MSVC",
	Make:      DialectNmake,
	FileName:  "Makefile.MSVC",
	VPath:     VPathGNU,
	LineEnd:   `\`,
	ObjSuffix: ".obj",
	Rules: Rules{
		C:   ".c.obj:\n\t$(CC) $(CFLAGS) -Fo$*.obj -c $<\n\t@echo\n",
		CC:  ".cc.obj:\n\t$(CC) -TP $(CFLAGS) -Fo$*.obj -c $<\n\t@echo\n",
		CPP: ".cpp.obj:\n\t$(CC) -TP $(CFLAGS) -Fo$*.obj -c $<\n\t@echo\n",
		CXX: ".cxx.obj:\n\t$(CC) -TP $(CFLAGS) -Fo$*.obj -c $<\n\t@echo\n",
		Res: ".rc.res:\n\trc -nologo -D_MSC_VER -Fo./$*.res $<\n\t@echo\n",
		Lib: "foo.lib: $(LIB_OBJ)\n\tlib -nologo -machine:%b -out:$@ $**\n\t@echo\n",
	},
	Lines: concat(
		header(DialectNmake, "MSVC", "Makefile.MSVC", opensslRootNative),
		[]string{
			"",
			"CC      = cl",
			"CFLAGS  = " + clCFlags + " -DHAVE_CONFIG_H",
			"LDFLAGS = " + clLDFlags,
			"",
			`!if "$(USE_OPENSSL)" == "1"`,
			"CFLAGS  = $(CFLAGS) " + opensslCFlags,
			"EX_LIBS = $(EX_LIBS) " + opensslExLibs,
			"!endif",
			"",
			"EX_LIBS = $(EX_LIBS) " + exLibs,
			"",
			"SOURCES = %s",
			"",
			"OBJECTS = $(SOURCES:.c=.obj)",
			"",
			"GENERATED = config.h",
			"",
			"all: $(GENERATED) $(PROGRAM)",
			"\t@echo 'Welcome to $(PROGRAM). (MSVC)'",
			"",
			"$(PROGRAM): $(OBJECTS)",
			"\tlink $(LDFLAGS) -out:$@ -map:$(@:.exe=.map) $** $(EX_LIBS) > link.tmp",
			"\ttype link.tmp >> $(@:.exe=.map)",
			"\t@echo",
			"",
			"%c",
			"%r",
			"%l",
			"clean:",
			"\tdel $(OBJECTS) $(PROGRAM:.exe=.map)",
			"",
			"vclean realclean: clean",
			"\tdel $(PROGRAM) $(GENERATED)",
			"",
		},
		nmakeConfig("MSVC"),
	),
	RCRule: []string{
		"foo.res: foo.rc",
		"\trc -nologo -D_MSC_VER -Fo./foo.res foo.rc",
		"\t@echo",
		"",
		"foo.rc: $(THIS_FILE)",
		"\t@echo // Resources for %P                  > $@",
		"\t@echo #include ^<winver.h^>               >> $@",
		"\t@echo VS_VERSION_INFO VERSIONINFO         >> $@",
		"\t@echo   FILEVERSION $(VER_MAJOR),$(VER_MINOR),$(VER_PATCH),0 >> $@",
		"\t@echo   FILETYPE    VFT_APP               >> $@",
		"\t@echo BEGIN                               >> $@",
		"\t@echo END                                 >> $@",
		"",
	},
})
