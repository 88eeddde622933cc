package generator

// Flag fragments shared by several templates.
const (
	gccCFlags  = "-m%t -Wall"
	gccLDFlags = "-m%t -Wl,--print-map,--sort-common"

	clCFlags = "-nologo -W3 -Zi -O2 -DWIN32 -D_CRT_NONSTDC_NO_WARNINGS \\\n" +
		"             -D_CRT_OBSOLETE_NO_WARNINGS -D_CRT_SECURE_NO_DEPRECATE \\\n" +
		"             -D_CRT_SECURE_NO_WARNINGS"
	clLDFlags = "-nologo -debug -incremental:no -verbose"

	commonCFlags = "-D_WIN32_WINNT=0x0501 -DHAVE_CONFIG_H -I. #! Add include dirs as needed"

	opensslCFlags       = "-DHAVE_OPENSSL -DOPENSSL_USE_DEPRECATED -I$(OPENSSL_ROOT)/include"
	opensslCygwinCFlags = "-DHAVE_OPENSSL -DOPENSSL_USE_DEPRECATED"
	opensslGCCExLibs    = "$(OPENSSL_ROOT)/libssl.dll.a $(OPENSSL_ROOT)/libcrypto.dll.a"
	opensslCygwinLibs   = "/usr/lib/libssl.a /usr/lib/libcrypto.a"
	opensslExLibs       = "$(OPENSSL_ROOT)/libssl_imp.lib $(OPENSSL_ROOT)/libcrypto_imp.lib"

	gccExLibs = "-lws2_32    #! Add more libs as needed"
	exLibs    = "ws2_32.lib  #! Add more libs as needed"

	opensslRootMinGW  = "$(MINGW_ROOT)/src/inet/Crypto/OpenSSL  #! Example requirement."
	opensslRootCygwin = "#! Not needed. OpenSSL should be installed under /usr/include"
	opensslRootNative = `f:\net\Crypto\OpenSSL   #! Example requirement.`
)

// header is the opening block every template starts with.
func header(dialect Dialect, title, thisFile, opensslRoot string) []string {
	lines := []string{
		"#",
		"# " + string(dialect) + " Makefile for %P / " + title + ".",
		"# Generated by gen-make at %D.",
		"#",
		"THIS_FILE = " + thisFile,
		"",
		"VER_MAJOR = 1  #! Change this",
		"VER_MINOR = 2  #! Change this",
		"VER_PATCH = 3  #! Change this",
		"VERSION   = $(VER_MAJOR).$(VER_MINOR).$(VER_PATCH)",
	}

	if dialect == DialectGNU {
		lines = append(lines,
			"",
			"DATE = $(shell date +%d-%B-%Y)",
			"",
			"#",
			"# This assumes you have CygWin/Msys's 'echo' with colour support.",
			"#",
			`green_msg = @echo -e '\e[1;32m$(strip $(1))\e[0m'`,
		)
	} else {
		lines = append(lines, "", "")
	}

	return append(lines,
		"",
		"%v",
		"",
		"#",
		"# Choose your weapons.",
		"#",
		"USE_OPENSSL   = 0",
		"USE_CRT_DEBUG = 0",
		"USE_ASTYLE    = %a  #! Set when a source formatter is on PATH",
		"",
		"PROGRAM = foo.exe #! Change this",
		"",
		"#",
		"# Location of required packages",
		"#",
		"OPENSSL_ROOT = "+opensslRoot,
	)
}

// gnuConfig writes config.h with GNU make's $(file) function.
func gnuConfig() []string {
	return []string{
		"define WARNING",
		"  /*",
		"   * DO NOT EDIT! This file was automatically generated",
		"   * from $(realpath $(THIS_FILE)) at $(DATE). Edit that file instead.",
		"   */",
		"endef",
		"",
		"define CONFIG_H",
		"  #define WIN32_LEAN_AND_MEAN",
		"  #if defined(_MSC_VER)",
		"    #ifndef _CRT_NONSTDC_NO_WARNINGS",
		"    #define _CRT_NONSTDC_NO_WARNINGS",
		"    #endif",
		"    #ifndef _CRT_OBSOLETE_NO_WARNINGS",
		"    #define _CRT_OBSOLETE_NO_WARNINGS",
		"    #endif",
		"    #ifndef _CRT_SECURE_NO_DEPRECATE",
		"    #define _CRT_SECURE_NO_DEPRECATE",
		"    #endif",
		"    #ifndef _CRT_SECURE_NO_WARNINGS",
		"    #define _CRT_SECURE_NO_WARNINGS",
		"    #endif",
		"    /* !Add more stuff here... */",
		"  #endif",
		"",
		"  #include <stdlib.h>",
		"  /* !Add more stuff here */",
		"endef",
		"",
		"config.h: $(THIS_FILE)",
		"\t$(call green_msg, Generating $@)",
		"\t$(file >  $@,$(WARNING))",
		"\t$(file >> $@,#ifndef _CONFIG_H)",
		"\t$(file >> $@,#define _CONFIG_H)",
		"\t$(file >> $@,$(CONFIG_H))",
		"\t$(file >> $@,#endif /* _CONFIG_H */)",
	}
}

// nmakeConfig writes config.h one echo at a time.
func nmakeConfig(title string) []string {
	return []string{
		"config.h: $(THIS_FILE)",
		"\t@echo /* config.h for " + title + ". DO NOT EDIT! > $@",
		"\t@echo  */                                            >> $@",
		"\t@echo #ifndef _CRT_NONSTDC_NO_WARNINGS  >> $@",
		"\t@echo #define _CRT_NONSTDC_NO_WARNINGS  >> $@",
		"\t@echo #endif                            >> $@",
		"\t@echo #ifndef _CRT_OBSOLETE_NO_WARNINGS >> $@",
		"\t@echo #define _CRT_OBSOLETE_NO_WARNINGS >> $@",
		"\t@echo #endif                            >> $@",
		"\t@echo #ifndef _CRT_SECURE_NO_DEPRECATE  >> $@",
		"\t@echo #define _CRT_SECURE_NO_DEPRECATE  >> $@",
		"\t@echo #endif                            >> $@",
		"\t@echo #ifndef _CRT_SECURE_NO_WARNINGS   >> $@",
		"\t@echo #define _CRT_SECURE_NO_WARNINGS   >> $@",
		"\t@echo #endif                            >> $@",
		"\t@echo /* !Add more stuff here...*/      >> $@",
		"",
	}
}

func plainConfig(title string) []string {
	return []string{
		"config.h: $(THIS_FILE)",
		"\t@echo /* config.h for " + title + ". DO NOT EDIT! */ > $@",
		"\t@echo /* !Add more stuff here */             >> $@",
		"",
	}
}

// depend adds the gcc -MM dependency target.
func depend(title, cc string) []string {
	return []string{
		`DEP_REPLACE = sed -e 's/\(.*\)\.o: /\n$$(OBJ_DIR)\/\1.$$(O): /'`,
		"",
		"depend: $(GENERATED)",
		"\t" + cc + " -MM $(filter -I% -D%, $(CFLAGS)) $(SOURCES) | $(DEP_REPLACE) > .depend." + title,
		"",
		"-include .depend." + title,
	}
}

// gccRules are the pattern rules of the gcc based generators.
func gccRules() Rules {
	return Rules{
		C:   "$(OBJ_DIR)/%.o: %.c\n\t$(CC) $(CFLAGS) -o $@ -c $<\n\t@echo\n",
		CC:  "$(OBJ_DIR)/%.o: %.cc\n\t$(CC) -x c++ $(CFLAGS) -o $@ -c $<\n\t@echo\n",
		CPP: "$(OBJ_DIR)/%.o: %.cpp\n\t$(CC) -x c++ $(CFLAGS) -o $@ -c $<\n\t@echo\n",
		CXX: "$(OBJ_DIR)/%.o: %.cxx\n\t$(CC) -x c++ $(CFLAGS) -o $@ -c $<\n\t@echo\n",
	}
}

// concat joins template fragments into one table.
func concat(parts ...[]string) []string {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]string, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
