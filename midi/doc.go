// Package midi encodes and decodes MIDI messages carried as atoms of type
// midi#MidiEvent.
//
// An event atom holds exactly one message: a status byte followed by its data
// bytes, with no running status and no interior status bytes. System-exclusive
// messages are framed by F0 and F7 and are handled separately by WriteSysEx
// and ReadSysEx.
//
//	seq, _ := w.BeginSequence(atom.TimeFrames)
//	_ = midi.PushEvent(&seq, atom.FrameTime(0), midi.NoteOn(0, 60, 100))
//	_, _ = seq.Finish()
package midi
