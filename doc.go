/*
Package ktx2 writes KTX2 (Khronos Texture 2.0) container files.

A file is laid out as the fixed 80-byte header with its index sub-block, the
level index table (one 24-byte entry per mip level, level 0 first), the data
format descriptor, and the level payloads. Payloads are stored smallest
level first so that a byte prefix of the file holds a complete low
resolution mip tail; the level index, not storage order, locates each level.

The writer never compresses or validates payloads itself. Callers hand it
levels already supercompressed with a Compressor and record the scheme in
the header. Key/value data and supercompression global data are always
empty.

Helpers build basic data format descriptors, supercompress levels with
Zstandard or zlib, and produce BCn level chains from images.
*/
package ktx2
