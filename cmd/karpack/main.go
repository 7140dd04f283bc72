// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command karpack bundles a lesson resource directory into a kar archive.
package main

import (
	"flag"
	"fmt"
	"os/user"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/lessons/resource"
)

func init() {
	currentUserName = "unknown"
	if u, err := user.Current(); err == nil {
		currentUserName = u.Username
	}
}

var (
	currentUserName string
	author          = flag.String("author", "", "Set the author of the package when compressing (defaults to the current user)")
	version         = flag.Int64("version", 1, "Archive version number to create it with")
	list            = flag.String("l", "", "List the entries of the given archive")
	compress        = flag.String("c", "", "Compress the given folder")
	dstFile         = flag.String("f", "res.kar", "Destination file")
	silent          = flag.Bool("s", false, "Silent")
)

func main() {
	flag.Parse()
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *silent {
		log.SetLevel(log.WarnLevel)
	}

	if *list != "" && *compress != "" {
		log.Fatal("only one operation at a time")
	}

	switch {
	case *list != "":
		if err := listFiles(*list); err != nil {
			log.Fatal(err)
		}
	case *compress != "":
		name := *author
		if name == "" {
			name = currentUserName
		}
		written, err := packDirectory(*compress, *dstFile, name, *version)
		if err != nil {
			log.Fatal(err)
		}
		log.WithField("bytes", written).Infof("wrote %s", *dstFile)
	default:
		flag.PrintDefaults()
	}
}

func listFiles(file string) error {
	ar, err := resource.OpenArchive(file)
	if err != nil {
		return err
	}
	defer ar.Close()
	for _, name := range ar.Names() {
		fmt.Println(name)
	}
	return nil
}
